package http

import (
	"time"

	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/kernel"
)

// Wire representations of the read-side views. Geo points go out in the
// textual "<lon> <lat>" form alongside discrete coordinates.

type geoJSON struct {
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
	Text string  `json:"text"`
}

type partyJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone_number"`
	ImageRef string   `json:"image,omitempty"`
	Address  string   `json:"address,omitempty"`
	Location *geoJSON `json:"location,omitempty"`
	Role     string   `json:"role"`
}

type riderJSON struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Phone               string   `json:"phone_number"`
	VehicleRegistration string   `json:"vehicle_registration"`
	Location            *geoJSON `json:"location,omitempty"`
}

type itemJSON struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageRef    string `json:"image,omitempty"`
}

type statusImageJSON struct {
	ID         string    `json:"id"`
	ImageRef   string    `json:"image"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type deliveryJSON struct {
	ID           string `json:"id"`
	Status       string `json:"delivery_status"`
	ProductImage string `json:"product_image,omitempty"`

	PickupAddress  string   `json:"pickup_address,omitempty"`
	PickupPoint    *geoJSON `json:"pickup_location,omitempty"`
	DropoffAddress string   `json:"dropoff_address,omitempty"`
	DropoffPoint   *geoJSON `json:"dropoff_location,omitempty"`

	ReceiverPhone string     `json:"receiver_phone"`
	Sender        partyJSON  `json:"sender"`
	Receiver      *partyJSON `json:"receiver,omitempty"`
	Rider         *riderJSON `json:"rider,omitempty"`

	Items        []itemJSON        `json:"items"`
	StatusImages []statusImageJSON `json:"status_images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func geoToJSON(point kernel.GeoPoint) *geoJSON {
	return &geoJSON{Lon: point.Lon(), Lat: point.Lat(), Text: point.String()}
}

// optionalGeoPoint builds a point from a discrete lon/lat pair when both
// fields are present, falling back to the textual "<lon> <lat>" form. The
// second return reports whether a valid point was produced.
func optionalGeoPoint(lon, lat *float64, text string) (kernel.GeoPoint, bool) {
	if lon != nil && lat != nil {
		point, err := kernel.NewGeoPoint(*lon, *lat)
		return point, err == nil
	}

	point, err := kernel.ParseGeoPoint(text)
	return point, err == nil
}

func partyToJSON(party queries.PartyView) partyJSON {
	out := partyJSON{
		ID:       party.ID.String(),
		Name:     party.Name,
		Phone:    party.Phone,
		ImageRef: party.ImageRef,
		Address:  party.Address,
		Role:     party.Role,
	}
	if party.Location != nil {
		out.Location = geoToJSON(*party.Location)
	}
	return out
}

func riderToJSON(view queries.RiderView) riderJSON {
	out := riderJSON{
		ID:                  view.ID.String(),
		Name:                view.Name,
		Phone:               view.Phone,
		VehicleRegistration: view.VehicleRegistration,
	}
	if view.Location != nil {
		out.Location = geoToJSON(*view.Location)
	}
	return out
}

func statusImagesToJSON(images []queries.StatusImageView) []statusImageJSON {
	out := make([]statusImageJSON, len(images))
	for i, image := range images {
		out[i] = statusImageJSON{
			ID:         image.ID.String(),
			ImageRef:   image.ImageRef,
			Status:     image.StatusLabel,
			UploadedAt: image.UploadedAt,
		}
	}
	return out
}

func deliveryToJSON(view queries.DeliveryView) deliveryJSON {
	out := deliveryJSON{
		ID:             view.ID.String(),
		Status:         view.Status.String(),
		ProductImage:   view.ProductImage,
		PickupAddress:  view.PickupAddress,
		DropoffAddress: view.DropoffAddress,
		ReceiverPhone:  view.ReceiverPhone,
		Sender:         partyToJSON(view.Sender),
		Items:          make([]itemJSON, len(view.Items)),
		StatusImages:   statusImagesToJSON(view.StatusImages),
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}

	if view.PickupPoint != nil {
		out.PickupPoint = geoToJSON(*view.PickupPoint)
	}
	if view.DropoffPoint != nil {
		out.DropoffPoint = geoToJSON(*view.DropoffPoint)
	}
	if view.Receiver != nil {
		receiver := partyToJSON(*view.Receiver)
		out.Receiver = &receiver
	}
	if view.Rider != nil {
		assigned := riderToJSON(*view.Rider)
		out.Rider = &assigned
	}

	for i, item := range view.Items {
		out.Items[i] = itemJSON{
			ID:          item.ID.String(),
			Description: item.Description,
			ImageRef:    item.ImageRef,
		}
	}

	return out
}

func deliveriesToJSON(views []queries.DeliveryView) []deliveryJSON {
	out := make([]deliveryJSON, len(views))
	for i, view := range views {
		out[i] = deliveryToJSON(view)
	}
	return out
}
