package geo

import "fuel-route-service/internal/domain"

// Coordinate scale used by the standard polyline encoding: stored integer
// value / 1e5 = degrees.
const polylineScale = 1e5

// DecodePolyline decodes a signed-delta, base-64-like encoded polyline into
// an ordered coordinate sequence. An empty string yields an empty sequence.
// Truncated input fails with MalformedPathEncodingError rather than
// returning a partial result.
func DecodePolyline(encoded string) ([]domain.Coordinates, error) {
	var points []domain.Coordinates
	var lat, lon int64

	for index := 0; index < len(encoded); {
		dlat, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		lat += dlat

		dlon, next, err := decodeDelta(encoded, next)
		if err != nil {
			return nil, err
		}
		lon += dlon
		index = next

		points = append(points, domain.Coordinates{
			Lat: float64(lat) / polylineScale,
			Lon: float64(lon) / polylineScale,
		})
	}

	return points, nil
}

// decodeDelta reads one varint-packed signed component starting at index and
// returns the delta and the position after it.
func decodeDelta(encoded string, index int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if index >= len(encoded) {
			return 0, index, &domain.MalformedPathEncodingError{Offset: index}
		}

		b := int64(encoded[index]) - 63
		if b < 0 {
			return 0, index, &domain.MalformedPathEncodingError{Offset: index}
		}
		index++

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
