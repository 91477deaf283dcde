package db_models

// BaseModel carries the surrogate key and bookkeeping timestamps shared by
// every table. A zero ID means the row has not been persisted yet.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (b BaseModel) IsPersisted() bool {
	return b.ID != 0
}
