// Package timesyncv1 defines the time sync service wire messages. A client
// repeatedly exchanges round trips with the robot until the service judges
// the clock skew estimate good enough.
package timesyncv1

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TimeSyncStatus reports the state of a sync exchange.
type TimeSyncStatus int32

const (
	StatusUnknown           TimeSyncStatus = 0
	StatusOK                TimeSyncStatus = 1
	StatusMoreSamplesNeeded TimeSyncStatus = 2
	StatusServiceNotReady   TimeSyncStatus = 3
)

// TimeSyncRoundTrip records the four timestamps of one request/response
// exchange.
type TimeSyncRoundTrip struct {
	ClientTx *timestamppb.Timestamp `json:"client_tx,omitempty"`
	ServerRx *timestamppb.Timestamp `json:"server_rx,omitempty"`
	ServerTx *timestamppb.Timestamp `json:"server_tx,omitempty"`
	ClientRx *timestamppb.Timestamp `json:"client_rx,omitempty"`
}

// TimeSyncEstimate is the service's current guess at the client clock skew.
type TimeSyncEstimate struct {
	RoundTripTime *durationpb.Duration `json:"round_trip_time,omitempty"`
	ClockSkew     *durationpb.Duration `json:"clock_skew,omitempty"`
}

// TimeSyncState is the service's view of a client's sync progress.
type TimeSyncState struct {
	BestEstimate    *TimeSyncEstimate      `json:"best_estimate,omitempty"`
	Status          TimeSyncStatus         `json:"status,omitempty"`
	MeasurementTime *timestamppb.Timestamp `json:"measurement_time,omitempty"`
}

// TimeSyncUpdateRequest reports the previous round trip, if any, and asks
// for a fresh estimate.
type TimeSyncUpdateRequest struct {
	PreviousRoundTrip *TimeSyncRoundTrip `json:"previous_round_trip,omitempty"`
	ClockIdentifier   string             `json:"clock_identifier,omitempty"`
}

// TimeSyncUpdateResponse carries the service's estimate and the identifier
// the client must echo on subsequent exchanges.
type TimeSyncUpdateResponse struct {
	PreviousEstimate *TimeSyncEstimate      `json:"previous_estimate,omitempty"`
	State            *TimeSyncState         `json:"state,omitempty"`
	ClockIdentifier  string                 `json:"clock_identifier,omitempty"`
	ServerRx         *timestamppb.Timestamp `json:"server_rx,omitempty"`
	ServerTx         *timestamppb.Timestamp `json:"server_tx,omitempty"`
}
