// Package fedex implements the carrier gateway against the Fedex web
// services API. Requests are authenticated with the account credentials
// configured at startup; the test-server flag switches the base URL so
// development traffic never reaches the production endpoint.
package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/participant"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

const (
	productionBaseURL = "https://ws.fedex.com"
	testServerBaseURL = "https://wsbeta.fedex.com"

	defaultTimeout = 30 * time.Second
)

// Config carries the Fedex web-services credentials.
type Config struct {
	Key                  string
	Password             string
	AccountNumber        string
	MeterNumber          string
	FreightAccountNumber string
	UseTestServer        bool

	// BaseURL overrides the derived endpoint. Used by tests; empty in
	// production configuration.
	BaseURL string
}

// Gateway is the Fedex implementation of ports.CarrierGateway.
type Gateway struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a Fedex gateway from the given configuration.
func NewGateway(config Config) *Gateway {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = productionBaseURL
		if config.UseTestServer {
			baseURL = testServerBaseURL
		}
	}

	return &Gateway{
		config:  config,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// CreateShipment books a shipment with Fedex and returns the assigned
// tracking number. The shipment note identifier is submitted as the
// customer reference so carrier-side records can be traced back.
func (g *Gateway) CreateShipment(
	ctx context.Context,
	shipmentNoteID kernel.UUID,
	shipper participant.Participant,
	recipient participant.Participant,
	items []ports.DeliveryItemRow,
) (string, error) {
	request := createShipmentRequest{
		Auth:              g.auth(),
		CustomerReference: shipmentNoteID.String(),
		Shipper:           participantToPayload(shipper),
		Recipient:         participantToPayload(recipient),
		Items:             itemsToPayload(items),
	}

	var response createShipmentResponse
	if err := g.post(ctx, "/ship/v1/shipments", request, &response); err != nil {
		return "", err
	}

	if response.TrackingNumber == "" {
		return "", errs.NewCarrierError(
			shipment.CarrierFedex.String(),
			fmt.Errorf("no tracking number in response"),
		)
	}

	return response.TrackingNumber, nil
}

// CancelShipment cancels the Fedex shipment booked for the shipment note.
func (g *Gateway) CancelShipment(ctx context.Context, shipmentNoteID kernel.UUID) error {
	request := cancelShipmentRequest{
		Auth:              g.auth(),
		CustomerReference: shipmentNoteID.String(),
	}

	var response cancelShipmentResponse
	if err := g.post(ctx, "/ship/v1/shipments/cancel", request, &response); err != nil {
		return err
	}

	if !response.Cancelled {
		return errs.NewCarrierError(
			shipment.CarrierFedex.String(),
			fmt.Errorf("cancellation was not confirmed"),
		)
	}

	return nil
}

// TrackShipment reports the Fedex view of the shipment mapped onto the
// domain lifecycle statuses. Unrecognized carrier states map to
// StatusInProgress so an unexpected code never flips a note to terminal.
func (g *Gateway) TrackShipment(ctx context.Context, trackingNumber string) (shipment.Status, error) {
	request := trackShipmentRequest{
		Auth:           g.auth(),
		TrackingNumber: trackingNumber,
	}

	var response trackShipmentResponse
	if err := g.post(ctx, "/track/v1/trackingnumbers", request, &response); err != nil {
		return shipment.StatusUnknown, err
	}

	switch response.StatusCode {
	case "DL":
		return shipment.StatusCompleted, nil
	case "DE", "CA":
		return shipment.StatusFailed, nil
	case "RS":
		return shipment.StatusReturned, nil
	default:
		return shipment.StatusInProgress, nil
	}
}

func (g *Gateway) auth() authPayload {
	return authPayload{
		Key:           g.config.Key,
		Password:      g.config.Password,
		AccountNumber: g.config.AccountNumber,
		MeterNumber:   g.config.MeterNumber,
	}
}

// post issues one JSON request against the Fedex endpoint. Transport
// failures and non-2xx responses surface as CarrierError, so callers can
// treat any unavailability uniformly.
func (g *Gateway) post(ctx context.Context, path string, request any, response any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errs.NewCarrierError(shipment.CarrierFedex.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.NewCarrierError(
			shipment.CarrierFedex.String(),
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload),
		)
	}

	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return errs.NewCarrierError(shipment.CarrierFedex.String(), err)
	}

	return nil
}
