package service

import (
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	trackingPrefix      = "CC"
	trackingAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingSuffixChars = 6
)

// GenerateTrackingID produces the public complaint identifier:
// "CC-" + base-36 millisecond timestamp + "-" + random base-36 suffix,
// upper-cased. The timestamp segment makes IDs sort roughly chronologically;
// the suffix keeps concurrent filings apart. Collisions are not eliminated,
// only made negligible; the tracking_id uniqueness constraint catches the rest.
func GenerateTrackingID() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := gonanoid.MustGenerate(trackingAlphabet, trackingSuffixChars)
	return trackingPrefix + "-" + timestamp + "-" + suffix
}
