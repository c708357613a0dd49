package constants

import (
	"regexp"
	"strings"
	"testing"
)

func TestTimeFormat(t *testing.T) {
	// Check that the global regexp can match constant TimeFormatYearSeconds.
	re := regexp.MustCompile(TimeFormatYearSecondsRgx)
	if !re.MatchString(TimeFormatYearSeconds) {
		t.Fatal("Mismatch between TimeFormatYearSeconds and regexp in constant TimeFormatYearSecondsRgx.")
	}
}

func TestDefaultSourceURLs(t *testing.T) {
	for _, u := range []string{DefaultLogDataURL, DefaultSongDataURL} {
		if !strings.HasPrefix(u, S3Scheme+"://") {
			t.Fatalf("expected default source %q to use the %v scheme", u, S3Scheme)
		}
		if !strings.HasSuffix(u, "/") {
			t.Fatalf("expected default source %q to be a prefix ending in a slash", u)
		}
	}
}
