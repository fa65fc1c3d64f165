package model

// Director is a row of the directors table.
type Director struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"index"`
	Gender     int
	UID        int64 `gorm:"column:uid;uniqueIndex"`
	Department string
	Movies     []Movie `gorm:"foreignKey:DirectorID;constraint:OnDelete:CASCADE"`
}

func (Director) TableName() string { return "directors" }

// DirectorInput is the body of POST /director and PUT /director/:directorId.
// Any id in the payload is ignored.
type DirectorInput struct {
	Name       string `json:"name" validate:"required"`
	Gender     *int   `json:"gender"`
	UID        *int64 `json:"uid" validate:"required"`
	Department string `json:"department"`
}

// DirectorRecord is the transport form of a director, with its movies embedded.
type DirectorRecord struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Gender     int             `json:"gender"`
	UID        int64           `json:"uid"`
	Department string          `json:"department"`
	Movies     []DirectorMovie `json:"movies"`
}

// DirectorSummary is the director embedded in a movie record.
type DirectorSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Gender     int    `json:"gender"`
	UID        int64  `json:"uid"`
	Department string `json:"department"`
}
