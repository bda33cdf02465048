package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/services"
)

// isJSONRequest reports whether the request body is JSON-encoded.
func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// wantsJSON reports whether the caller expects a JSON response rather than a
// rendered page.
func wantsJSON(r *http.Request) bool {
	if isJSONRequest(r) {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// decodePostInput reads a PostInput from either a JSON or a form-encoded
// body. Both encodings land in the same structure, so everything downstream
// is encoding-agnostic.
func decodePostInput(r *http.Request) (services.PostInput, error) {
	var input services.PostInput

	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, errs.NewMalformedPayloadError("JSON", err)
		}
		// Blank optionals mean "absent" regardless of encoding.
		input.YouTubeURL = normalizeOptional(input.YouTubeURL)
		input.StravaActivityID = normalizeOptional(input.StravaActivityID)
		return input, nil
	}

	if err := r.ParseForm(); err != nil {
		return input, errs.NewMalformedPayloadError("form", err)
	}

	input.Title = r.PostFormValue("title")
	input.Excerpt = r.PostFormValue("excerpt")
	input.Content = r.PostFormValue("content")
	input.Category = r.PostFormValue("category")
	input.Emoji = r.PostFormValue("emoji")
	input.YouTubeURL = optionalFormValue(r, "youtube_url")
	input.StravaActivityID = optionalFormValue(r, "strava_activity_id")
	return input, nil
}

func optionalFormValue(r *http.Request, key string) *string {
	value := r.PostFormValue(key)
	return normalizeOptional(&value)
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
