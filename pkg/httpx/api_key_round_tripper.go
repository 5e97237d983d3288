package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper добавляет ключ API в query каждого запроса.
// Исходный запрос не меняется.
type APIKeyRoundTripper struct {
	next  http.RoundTripper
	param string
	key   string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	param string,
	key string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:  next,
		param: param,
		key:   key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	q := clone.URL.Query()
	q.Set(rt.param, rt.key)
	clone.URL.RawQuery = q.Encode()

	resp, err := rt.next.RoundTrip(clone)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
