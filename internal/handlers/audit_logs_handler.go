package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
	tz string
}

func NewAuditLogsHandler(db *gorm.DB, hotelTimezone string) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, tz: hotelTimezone}
}

// List filters by ?action, ?entity, ?entity_id, ?user_id and a ?from / ?to
// window of hotel calendar days (inclusive, YYYY-MM-DD).
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	q := h.db.Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if id, err := strconv.ParseUint(c.Query("entity_id"), 10, 64); err == nil {
		q = q.Where("entity_id = ?", id)
	}

	if id, err := strconv.ParseUint(c.Query("user_id"), 10, 64); err == nil {
		q = q.Where("user_id = ?", id)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := timezone.StartOfDayIn(fromStr, h.tz)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := timezone.StartOfDayIn(toStr, h.tz)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total + page
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, logs, total)
}
