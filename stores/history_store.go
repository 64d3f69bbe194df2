package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abhishek83gupta/Lingua/models"
)

// ErrHistoryNotFound covers both a missing row and a row owned by someone
// else. Callers must not be able to tell the two apart.
var ErrHistoryNotFound = errors.New("translation history entry not found")

// HistoryStore is the persistence gateway for translation history.
type HistoryStore struct {
	db *gorm.DB
}

func NewHistoryStore(db *gorm.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Create inserts a new entry. The owner is fixed here and never updated.
func (s *HistoryStore) Create(ctx context.Context, entry *models.TranslationHistory) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// ListByOwner returns every entry owned by userID, newest first. The id
// tiebreak keeps ordering stable for rows created within the same second.
func (s *HistoryStore) ListByOwner(ctx context.Context, userID uint, offset, limit int) ([]models.TranslationHistory, error) {
	q := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	var entries []models.TranslationHistory
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByOwner returns the total number of entries owned by userID.
func (s *HistoryStore) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.TranslationHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// SetFavorite updates the favorite flag on an entry owned by userID and
// returns the updated row. A missing entry and an entry owned by another
// user both yield ErrHistoryNotFound.
func (s *HistoryStore) SetFavorite(ctx context.Context, id, userID uint, fav bool) (*models.TranslationHistory, error) {
	db := s.db.WithContext(ctx)

	var entry models.TranslationHistory
	if err := db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrHistoryNotFound
	}
	if entry.IsFavorite == fav {
		// Idempotent: nothing to write.
		return &entry, nil
	}
	if err := db.Model(&entry).Update("is_favorite", fav).Error; err != nil {
		return nil, err
	}
	entry.IsFavorite = fav
	return &entry, nil
}
