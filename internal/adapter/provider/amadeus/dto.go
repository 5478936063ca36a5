package amadeus

// FlightOffersResponse is the body of GET /v2/shopping/flight-offers.
type FlightOffersResponse struct {
	Meta         ResponseMeta  `json:"meta"`
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

// ResponseMeta carries the result count.
type ResponseMeta struct {
	Count int `json:"count"`
}

// FlightOffer is a single priced itinerary.
type FlightOffer struct {
	ID                    string            `json:"id"`
	Source                string            `json:"source"`
	NumberOfBookableSeats *int              `json:"numberOfBookableSeats"`
	Itineraries           []Itinerary       `json:"itineraries"`
	Price                 OfferPrice        `json:"price"`
	TravelerPricings      []TravelerPricing `json:"travelerPricings"`
}

// Itinerary is one direction of travel: the first is outbound, the second the return.
type Itinerary struct {
	Duration string          `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

// FlightSegment is a single flight within an itinerary.
type FlightSegment struct {
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	CarrierCode   string         `json:"carrierCode"`
	Number        string         `json:"number"`
	Duration      string         `json:"duration"`
	NumberOfStops int            `json:"numberOfStops"`
}

// FlightEndpoint is an airport and a local, zone-less timestamp.
type FlightEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// OfferPrice holds decimal amounts encoded as strings.
type OfferPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// TravelerPricing is the fare breakdown for one traveller.
type TravelerPricing struct {
	TravelerID           string                `json:"travelerId"`
	FareOption           string                `json:"fareOption"`
	TravelerType         string                `json:"travelerType"`
	FareDetailsBySegment []FareDetailBySegment `json:"fareDetailsBySegment"`
}

// FareDetailBySegment carries the cabin and booking class of a segment.
type FareDetailBySegment struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	FareBasis string `json:"fareBasis"`
	Class     string `json:"class"`
}

// Dictionaries maps codes in the response to display values.
type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

// tokenResponse is the body of POST /v1/security/oauth2/token.
type tokenResponse struct {
	Type        string `json:"type"`
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

// errorResponse is the error body returned by the API.
type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
