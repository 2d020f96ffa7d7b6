package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pokedex-backend/internal/errs"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// ResourceID extracts the numeric ID from an upstream resource URL such as
// "https://pokeapi.co/api/v2/pokemon/25/". The ID is the second-to-last
// "/"-separated segment, so the trailing slash the upstream always emits is
// required.
func ResourceID(url string) (int, error) {
	segments := strings.Split(url, "/")
	if len(segments) < 2 {
		return 0, fmt.Errorf("%w: resource url %q has no path segments", errs.ErrMalformedUpstream, url)
	}

	candidate := segments[len(segments)-2]
	if !digitsRe.MatchString(candidate) {
		return 0, fmt.Errorf("%w: resource url %q does not end in a numeric id", errs.ErrMalformedUpstream, url)
	}

	id, err := strconv.Atoi(candidate)
	if err != nil {
		return 0, fmt.Errorf("%w: resource url %q: %v", errs.ErrMalformedUpstream, url, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: resource url %q has non-positive id %d", errs.ErrMalformedUpstream, url, id)
	}

	return id, nil
}
