package services

import (
	"regexp"
)

// Accepted URL shapes: youtube.com/watch?v=<id>, youtu.be/<id>,
// youtube.com/embed/<id>. The id runs until the next &, ?, # or newline.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractYouTubeID pulls the video id out of a YouTube URL. It returns ""
// for empty, unrecognized or malformed input; it never fails.
func ExtractYouTubeID(url string) string {
	if url == "" {
		return ""
	}

	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}
