package models

import (
	"regexp"
	"strings"

	"github.com/amaumene/nyaainfo/internal/constants"
	"github.com/amaumene/nyaainfo/internal/errors"
)

var (
	idPattern       = regexp.MustCompile(constants.IDPattern)
	infoHashPattern = regexp.MustCompile(constants.InfoHashPattern)
)

// TargetKind tells whether a QueryTarget is an id or an info hash.
type TargetKind int

const (
	TargetID TargetKind = iota
	TargetInfoHash
)

func (k TargetKind) String() string {
	if k == TargetInfoHash {
		return "hash"
	}
	return "id"
}

// QueryTarget is a validated torrent identifier.
type QueryTarget struct {
	value string
	kind  TargetKind
}

// ParseTarget lowercases and trims raw and checks it against the id and
// info hash patterns.
func ParseTarget(raw string) (QueryTarget, error) {
	value := strings.TrimSpace(strings.ToLower(raw))

	switch {
	case idPattern.MatchString(value):
		return QueryTarget{value: value, kind: TargetID}, nil
	case infoHashPattern.MatchString(value):
		return QueryTarget{value: value, kind: TargetInfoHash}, nil
	}

	return QueryTarget{}, errors.NewInvalidTargetError(raw)
}

// String returns the normalized identifier.
func (t QueryTarget) String() string { return t.value }

// Kind returns whether the target is an id or a hash.
func (t QueryTarget) Kind() TargetKind { return t.kind }
