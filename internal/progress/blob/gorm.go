package blob

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kariyeryolu/backend/internal/platform/logger"
)

// userRecordRow is a single-row table holding the serialized user record.
// The blob stays opaque JSON so the schema never chases the record shape.
type userRecordRow struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"uniqueIndex;not null;column:key"`
	Data      datatypes.JSON `gorm:"not null;column:data"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (userRecordRow) TableName() string { return "user_record" }

// GormStore persists the blob in a sqlite database through gorm.
type GormStore struct {
	db  *gorm.DB
	key string
	log *logger.Logger
}

func NewGormStore(path, key string, baseLog *logger.Logger) (*GormStore, error) {
	if key == "" {
		return nil, fmt.Errorf("gorm store: empty key")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm store: open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&userRecordRow{}); err != nil {
		return nil, fmt.Errorf("gorm store: automigrate: %w", err)
	}
	return &GormStore{
		db:  db,
		key: key,
		log: baseLog.With("store", "GormStore"),
	}, nil
}

func (s *GormStore) Load() ([]byte, error) {
	var row userRecordRow
	err := s.db.Where("key = ?", s.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(row.Data), nil
}

func (s *GormStore) Save(data []byte) error {
	row := userRecordRow{
		Key:  s.key,
		Data: datatypes.JSON(data),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (s *GormStore) Delete() error {
	return s.db.Where("key = ?", s.key).Delete(&userRecordRow{}).Error
}
