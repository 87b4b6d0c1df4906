package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/platform/retry"
	"fuel-route-service/internal/ports"
)

// DefaultOSRMURL is the public OSRM demo instance.
const DefaultOSRMURL = "https://router.project-osrm.org"

const metersPerMile = 1609.344

// OSRMRouteProvider fetches driving routes from an OSRM HTTP instance with
// full polyline geometry.
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	client  *http.Client
	baseURL string
	policy  retry.Policy
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	return &OSRMRouteProvider{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  retry.DefaultPolicy(),
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

func (p *OSRMRouteProvider) GetRoute(ctx context.Context, start, end domain.Coordinates) (_ ports.Route, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	// OSRM takes lon,lat pairs in the path.
	endpoint := fmt.Sprintf("%s/route/v1/driving/%v,%v;%v,%v",
		p.baseURL, start.Lon, start.Lat, end.Lon, end.Lat)

	q := url.Values{}
	q.Set("overview", "full")
	q.Set("geometries", "polyline")

	var decoded osrmResponse
	if err := getJSON(ctx, p.client, p.policy, endpoint+"?"+q.Encode(), nil, &decoded); err != nil {
		// OSRM reports routing failures as 400 with the code in the body.
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusBadRequest {
			var errResp osrmResponse
			if json.Unmarshal([]byte(he.Body), &errResp) == nil && errResp.Code == "NoRoute" {
				return ports.Route{}, &domain.NoRouteFoundError{Start: start, End: end}
			}
		}
		return ports.Route{}, &domain.ServiceUnavailableError{
			Service: "osrm",
			Detail:  "routing request failed",
			Err:     err,
		}
	}

	if decoded.Code == "NoRoute" || len(decoded.Routes) == 0 {
		return ports.Route{}, &domain.NoRouteFoundError{Start: start, End: end}
	}
	if decoded.Code != "Ok" {
		return ports.Route{}, fmt.Errorf("get route: osrm returned code %q", decoded.Code)
	}

	route := decoded.Routes[0]
	return ports.Route{
		Geometry:        route.Geometry,
		DistanceMiles:   route.Distance / metersPerMile,
		DurationSeconds: route.Duration,
	}, nil
}
