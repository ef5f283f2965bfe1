package entity

import "time"

type Resource struct {
	ID           string     `json:"id" gorm:"column:id;type:char(36);primaryKey"`
	TutorID      string     `json:"tutorId" gorm:"column:tutor_id;size:64;not null"`
	TutorName    string     `json:"tutorName" gorm:"column:tutor_name;size:255"`
	Title        string     `json:"title" gorm:"column:title;size:255;not null"`
	Description  string     `json:"description" gorm:"column:description;type:text"`
	Category     string     `json:"category" gorm:"column:category;size:20;not null;index"`
	Price        int64      `json:"price" gorm:"column:price;not null;default:0"`
	PreviewImage string     `json:"previewImage" gorm:"column:preview_image;size:512"`
	FileSizeMB   float64    `json:"fileSize" gorm:"column:file_size_mb"`
	Downloads    int64      `json:"downloads" gorm:"column:downloads;not null;default:0"`
	Rating       float64    `json:"rating" gorm:"column:rating"`
	Reviews      int64      `json:"reviews" gorm:"column:reviews"`
	Tags         StringList `json:"tags" gorm:"column:tags"`
	FileKey      string     `json:"-" gorm:"column:file_key;size:255"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (Resource) TableName() string {
	return "resources"
}

func (r Resource) Free() bool {
	return r.Price == 0
}

// ObjectKey is where the file lives in the resource bucket.
func (r Resource) ObjectKey() string {
	if r.FileKey != "" {
		return r.FileKey
	}
	return "resources/" + r.ID
}
