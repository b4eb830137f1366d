package model

import "github.com/jackc/pgx/v5/pgtype"

// Image describes a picture uploaded by the media subsystem. ID stays zero
// until the upload has been stored.
type Image struct {
	ID        int64              `json:"id,omitempty"`
	PostID    *int64             `json:"post_id,omitempty"`
	Name      string             `json:"name"`
	URL       string             `json:"url"`
	Size      int64              `json:"size"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (i *Image) Persisted() bool {
	return i != nil && i.ID > 0
}

// PersistedImages keeps only descriptors that already carry an identifier.
func PersistedImages(images []*Image) []*Image {
	persisted := make([]*Image, 0, len(images))
	for _, img := range images {
		if img.Persisted() {
			persisted = append(persisted, img)
		}
	}
	return persisted
}
