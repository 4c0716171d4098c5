package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/darren10101/SnapEvent-sub001/internal/domain"
	"github.com/darren10101/SnapEvent-sub001/internal/platform/obs"
	"github.com/darren10101/SnapEvent-sub001/internal/ports"
)

type matrixElement struct {
	Status   string    `json:"status"`
	Duration valueText `json:"duration"`
	Distance valueText `json:"distance"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

// GetMatrix retrieves duration and distance for the cartesian product
// of origins and destinations using the distance-matrix endpoint. The
// returned grid preserves input order: row = origin, column =
// destination.
func (g *GoogleDirectionsProvider) GetMatrix(
	ctx context.Context,
	origins, destinations []domain.Coordinates,
	mode string,
) (_ [][]ports.MatrixCell, err error) {
	defer obs.Time(ctx, "gmaps.GetMatrix")(&err)

	if err := validMode(mode); err != nil {
		return nil, err
	}

	if len(origins) == 0 || len(destinations) == 0 {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "matrix requires at least one origin and one destination"}
	}

	endpoint := g.baseURL + "/maps/api/distancematrix/json"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("origins", joinLatLng(origins))
		q.Set("destinations", joinLatLng(destinations))
		q.Set("mode", mode)
		q.Set("key", g.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "matrix request failed", Err: err}
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.RouteError{Kind: domain.ProviderError, Msg: "decode matrix response", Err: err}
	}

	if decoded.Status != "OK" {
		return nil, &domain.RouteError{
			Kind: domain.ProviderError,
			Msg:  fmt.Sprintf("matrix status %s: %s", decoded.Status, decoded.ErrorMessage),
		}
	}

	if len(decoded.Rows) != len(origins) {
		return nil, &domain.RouteError{
			Kind: domain.ProviderError,
			Msg:  fmt.Sprintf("matrix returned %d rows for %d origins", len(decoded.Rows), len(origins)),
		}
	}

	grid := make([][]ports.MatrixCell, len(origins))
	for i, row := range decoded.Rows {
		if len(row.Elements) != len(destinations) {
			return nil, &domain.RouteError{
				Kind: domain.ProviderError,
				Msg:  fmt.Sprintf("matrix row %d has %d elements for %d destinations", i, len(row.Elements), len(destinations)),
			}
		}

		cells := make([]ports.MatrixCell, len(destinations))
		for j, el := range row.Elements {
			if el.Status != "OK" {
				cells[j] = ports.MatrixCell{Status: ports.MatrixStatusFailed}
				continue
			}
			cells[j] = ports.MatrixCell{
				DurationMinutes: minutesFromSeconds(el.Duration.Value),
				DistanceText:    el.Distance.Text,
				Status:          ports.MatrixStatusOK,
			}
		}
		grid[i] = cells
	}

	return grid, nil
}

func joinLatLng(coords []domain.Coordinates) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, c.LatLng())
	}
	return strings.Join(parts, "|")
}
