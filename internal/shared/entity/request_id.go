package entity

import "github.com/oklog/ulid/v2"

// RequestID identifies one HTTP request. It is a ULID so ids sort by
// arrival time in the logs.
type RequestID ulid.ULID

func NewRequestID() RequestID {
	return RequestID(ulid.Make())
}

func ParseRequestID(s string) (RequestID, error) {
	parsed, err := ulid.Parse(s)
	if err != nil {
		return RequestID{}, err
	}

	return RequestID(parsed), nil
}

func (id RequestID) String() string {
	return ulid.ULID(id).String()
}

func (id RequestID) IsZero() bool {
	return ulid.ULID(id) == ulid.ULID{}
}
