package services

import (
	"fmt"
	"net/url"
	"strings"

	"crawl-server/models"
)

const GOOGLE_SEARCH_URL = "https://www.google.com/search?q="
const SEVENROOMS_SEARCH_URL = "https://www.sevenrooms.com/explore/search?query="
const WHATSAPP_SHARE_URL = "https://wa.me/?text="

// BookingService builds reservation-contact links. It makes no upstream calls.
type BookingService struct{}

func NewBookingService() *BookingService {
	return &BookingService{}
}

// BookingLinks templates search and share links for a venue name and an
// optional location.
func (s *BookingService) BookingLinks(name, location string) (*models.BookingLinks, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return nil, clientInputErrorf("missing venue name")
	}

	place := name
	if location != "" {
		place = name + " " + location
	}

	message := fmt.Sprintf("Hey! Want to join me at %s tonight? Let's book a table.", name)
	if location != "" {
		message = fmt.Sprintf("Hey! Want to join me at %s (%s) tonight? Let's book a table.", name, location)
	}

	return &models.BookingLinks{
		Venue:           name,
		GoogleSearchURL: GOOGLE_SEARCH_URL + url.QueryEscape(place+" reservations"),
		SevenRoomsURL:   SEVENROOMS_SEARCH_URL + url.QueryEscape(name),
		WhatsAppMsg:     WHATSAPP_SHARE_URL + url.QueryEscape(message),
	}, nil
}
