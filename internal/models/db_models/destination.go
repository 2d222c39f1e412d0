package db_models

import (
	"github.com/pgvector/pgvector-go"
)

type Destination struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Country     string
	Description string          `gorm:"type:text"`
	ImageURL    string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`

	// Populated only by the similarity search query.
	Similarity float64 `gorm:"->;-:migration"`
}
