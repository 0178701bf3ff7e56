package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// paramID parses a positive numeric path parameter, writing a 400 when it
// is not one.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.FromError(c, httperr.ErrValidation("invalid_id"))
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		httperr.FromError(c, httperr.ErrValidation("invalid_request"))
		return false
	}
	return true
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// notFound maps a gorm miss to a 404 with code.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// record queues an audit event for entity id on behalf of the caller.
func record(d *audit.Dispatcher, c *gin.Context, action, entity string, id uint, meta any) {
	if d == nil {
		return
	}
	uid := middleware.UserID(c)
	ev := audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	}
	if uid != 0 {
		ev.UserID = &uid
	}
	d.Dispatch(ev)
}
