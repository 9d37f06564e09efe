package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devkan/FirstAidVox/internal/facility"
	"github.com/devkan/FirstAidVox/internal/triage"
	"github.com/devkan/FirstAidVox/internal/triage/marker"
	pkgErrors "github.com/devkan/FirstAidVox/pkg/errors"
	"github.com/devkan/FirstAidVox/pkg/imagecheck"
)

// processChatReq parses a multipart or JSON chat request and validates every field.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var (
		text      string
		history   []historyItem
		lat, lng  *float64
		imageData []byte
		err       error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") || c.ContentType() == "application/x-www-form-urlencoded" {
		text = c.PostForm("text")
		if raw := strings.TrimSpace(c.PostForm("history")); raw != "" {
			if err := json.Unmarshal([]byte(raw), &history); err != nil {
				return chatReq{}, errInvalidHistory
			}
		}
		if lat, err = parseOptionalFloat(c.PostForm("latitude")); err != nil {
			return chatReq{}, errInvalidLocation
		}
		if lng, err = parseOptionalFloat(c.PostForm("longitude")); err != nil {
			return chatReq{}, errInvalidLocation
		}
		if imageData, err = h.readFormImage(c); err != nil {
			return chatReq{}, err
		}
	} else {
		var body chatJSONReq
		if err := c.ShouldBindJSON(&body); err != nil {
			return chatReq{}, pkgErrors.ErrValidation.WithDetails(map[string]any{"reason": err.Error()})
		}
		text, history, lat, lng = body.Text, body.History, body.Latitude, body.Longitude
		if body.Location != nil && lat == nil && lng == nil {
			lat, lng = body.Location.Latitude, body.Location.Longitude
		}
		if body.Image != "" {
			if imageData, err = base64.StdEncoding.DecodeString(body.Image); err != nil {
				return chatReq{}, errCorruptedImage
			}
		}
	}

	req := chatReq{}
	if req.Text, err = sanitizeText(text, h.limits.MaxTextLength); err != nil {
		return chatReq{}, err
	}
	if req.History, err = h.toTurns(history); err != nil {
		return chatReq{}, err
	}
	if req.Location, err = toLocation(lat, lng); err != nil {
		return chatReq{}, err
	}
	if imageData != nil {
		res, err := imagecheck.Validate(imageData, h.limits.Image)
		if err != nil {
			return chatReq{}, mapImageError(err)
		}
		req.Image = &triage.Image{Data: imageData, MIMEType: res.MIMEType}
	}
	return req, nil
}

// readFormImage reads the optional "image" file, bounded by the size limit.
func (h *handler) readFormImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// No file part.
		return nil, nil
	}

	maxBytes := h.limits.Image.MaxBytes
	if maxBytes <= 0 {
		maxBytes = imagecheck.DefaultMaxBytes
	}
	if fh.Size > int64(maxBytes) {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errCorruptedImage
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)+1))
	if err != nil {
		return nil, errCorruptedImage
	}
	return data, nil
}

func (h *handler) toTurns(items []historyItem) ([]triage.Turn, error) {
	turns := make([]triage.Turn, 0, len(items))
	for _, it := range items {
		role := triage.Role(strings.ToLower(strings.TrimSpace(it.Role)))
		if role != triage.RoleUser && role != triage.RoleAssistant {
			return nil, errInvalidHistory
		}
		turns = append(turns, triage.Turn{Role: role, Content: it.Content})
	}
	return boundHistory(turns, h.limits.MaxHistory), nil
}

// boundHistory keeps the newest limit turns. When the only completion turn falls
// outside that window, it replaces the oldest kept turn so a closed consultation
// stays closed.
func boundHistory(turns []triage.Turn, limit int) []triage.Turn {
	if len(turns) <= limit {
		return turns
	}
	cut := len(turns) - limit
	window := turns[cut:]
	if slices.ContainsFunc(window, isCompletionTurn) {
		return window
	}
	for i := cut - 1; i >= 0; i-- {
		if isCompletionTurn(turns[i]) {
			return append([]triage.Turn{turns[i]}, window[1:]...)
		}
	}
	return window
}

func isCompletionTurn(t triage.Turn) bool {
	return t.Role == triage.RoleAssistant && marker.HasCompletion(t.Content)
}

func toLocation(lat, lng *float64) (*triage.Location, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errInvalidLocation
	}
	if !facility.ValidCoordinate(*lat, *lng) {
		return nil, errInvalidLocation
	}
	return &triage.Location{Latitude: *lat, Longitude: *lng}, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return &v, nil
}
