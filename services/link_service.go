package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"shortlink/database"
	"shortlink/models"
)

// ErrInvalidURL is returned when the submitted URL is missing or not a
// well-formed absolute URL. No link is created in that case.
var ErrInvalidURL = errors.New("original URL must be a well-formed absolute URL")

const maxInsertAttempts = 5

// CreateShortLink validates the URL, allocates a unique short code and
// persists the link. Two concurrent submissions can pass the generator's
// existence pre-check with the same code; the unique constraint rejects the
// loser at insert time and we retry with a fresh code.
func CreateShortLink(originalURL string) (*models.Link, error) {
	if !isValidURL(originalURL) {
		return nil, ErrInvalidURL
	}

	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		code, err := GenerateShortCode()
		if err != nil {
			return nil, err
		}

		link := models.Link{
			OriginalURL: originalURL,
			ShortCode:   code,
		}
		err = database.DB.Create(&link).Error
		if err == nil {
			return &link, nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return nil, fmt.Errorf("create link: %w", err)
	}

	return nil, ErrCodeSpaceExhausted
}

// GetLinkByShortCode resolves a short code. Returns gorm.ErrRecordNotFound
// when no link holds the code.
func GetLinkByShortCode(code string) (*models.Link, error) {
	var link models.Link
	if err := database.DB.Where("short_code = ?", code).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID resolves a link by its identifier.
func GetLinkByID(id uint) (*models.Link, error) {
	var link models.Link
	if err := database.DB.First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// RecordClick increments the click counter atomically at the storage layer
// and stores one click event. The two writes are independent: a failure in
// one does not prevent the other, and the joined error is for logging only.
func RecordClick(link *models.Link, ip, device, browser, location string) error {
	var errs []error

	err := database.DB.Model(link).UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
	if err != nil {
		errs = append(errs, fmt.Errorf("increment clicks: %w", err))
	}

	event := models.LinkAnalytic{
		LinkID:    link.ID,
		IPAddress: ip,
		Device:    device,
		Browser:   browser,
		Location:  location,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		errs = append(errs, fmt.Errorf("record click event: %w", err))
	}

	return errors.Join(errs...)
}

// DeleteLink removes a link and all its click events in one transaction.
// Returns gorm.ErrRecordNotFound when the id is unknown; nothing is deleted
// partially.
func DeleteLink(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.First(&link, id).Error; err != nil {
			return err
		}
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.LinkAnalytic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&link).Error
	})
}

// GetLinksPage returns one page of links, newest first, with the total count.
// An out-of-range page yields an empty slice.
func GetLinksPage(page, pageSize int) ([]models.Link, int64, error) {
	var total int64
	if err := database.DB.Model(&models.Link{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	links := []models.Link{}
	err := database.DB.
		Order("created_at desc, id desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// GetAnalyticsPage is GetLinksPage with each link's click events preloaded,
// newest first.
func GetAnalyticsPage(page, pageSize int) ([]models.Link, int64, error) {
	var total int64
	if err := database.DB.Model(&models.Link{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	links := []models.Link{}
	err := database.DB.
		Preload("Analytics", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc, id desc")
		}).
		Order("created_at desc, id desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// TotalClicks sums the click counters across all links.
func TotalClicks() (int64, error) {
	var total int64
	err := database.DB.Model(&models.Link{}).
		Select("COALESCE(SUM(clicks), 0)").
		Scan(&total).Error
	return total, err
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// isUniqueViolation matches the duplicate-key wording of both Postgres and
// the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
