package s3

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/relloyd/dwhpipe/constants"
)

// Location is an S3 bucket and key prefix that a bulk load reads from.
type Location struct {
	Bucket string
	Prefix string
}

// String returns the location as s3://<bucket>/<prefix>/ which is the form COPY expects for a prefix.
func (l Location) String() string {
	if l.Prefix == "" {
		return fmt.Sprintf("%v://%v/", constants.S3Scheme, l.Bucket)
	}
	return fmt.Sprintf("%v://%v/%v/", constants.S3Scheme, l.Bucket, l.Prefix)
}

// ParseURL expects s to be of the form s3://<bucket>[/<prefix>].
// It returns a Location populated with the components of s.
// Unlike the connection DSNs, the scheme is mandatory since the value is written into SQL verbatim.
func ParseURL(s string) (retval Location, err error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return retval, fmt.Errorf("error parsing S3 URL: %v", err)
	}
	if u.Scheme != constants.S3Scheme {
		return retval, fmt.Errorf("expected S3 URL scheme %q but got %q in %q", constants.S3Scheme, u.Scheme, s)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return retval, fmt.Errorf("unexpected query or fragment in S3 URL %q", s)
	}
	retval.Bucket = u.Host
	if retval.Bucket == "" {
		return retval, fmt.Errorf("S3 URL %q is missing a bucket name", s)
	}
	if strings.ContainsAny(s, "'\\") { // the value is quoted into COPY statements...
		return retval, fmt.Errorf("S3 URL %q must not contain quotes or backslashes", s)
	}
	retval.Prefix = strings.Trim(u.Path, "/")
	return
}
