package listing

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 200
	MaxPriceLength       = 64
	MaxDescriptionLength = 5000
)

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title exceeds maximum length")
	ErrEmptyPrice         = errors.New("price cannot be empty")
	ErrPriceTooLong       = errors.New("price exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidVideoURL    = errors.New("video url must be an absolute http(s) url")
	ErrInvalidImage       = errors.New("image requires a name and a display handle")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

// Price is free text ("USD 120.000", "a convenir"); only presence and length are checked.
type Price struct {
	text string
}

func NewPrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, ErrEmptyPrice
	}
	if utf8.RuneCountInString(s) > MaxPriceLength {
		return Price{}, ErrPriceTooLong
	}
	return Price{text: s}, nil
}

func (p Price) String() string { return p.text }

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: s}, nil
}

func (d Description) String() string { return d.text }

// VideoURL keeps the link as entered; the embeddable form is derived on read.
type VideoURL struct {
	raw string
}

func NewVideoURL(s string) (VideoURL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return VideoURL{}, nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return VideoURL{}, ErrInvalidVideoURL
	}
	return VideoURL{raw: s}, nil
}

func (v VideoURL) String() string { return v.raw }
func (v VideoURL) IsZero() bool   { return v.raw == "" }

type Image struct {
	name          string
	displayHandle string
}

func NewImage(name, displayHandle string) (Image, error) {
	name = strings.TrimSpace(name)
	if name == "" || displayHandle == "" {
		return Image{}, ErrInvalidImage
	}
	return Image{name: name, displayHandle: displayHandle}, nil
}

func (i Image) Name() string          { return i.name }
func (i Image) DisplayHandle() string { return i.displayHandle }
