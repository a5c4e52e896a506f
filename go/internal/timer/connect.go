package timer

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	timerv1 "github.com/mcdev12/contest-timer/go/internal/genproto/timer/v1"
	"github.com/mcdev12/contest-timer/go/internal/genproto/timer/v1/timerv1connect"
	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// RPCService implements the TimerService Connect interface
type RPCService struct {
	app TimerApp
}

// NewRPCService creates a new timer RPC service
func NewRPCService(app TimerApp) *RPCService {
	return &RPCService{app: app}
}

// Verify that RPCService implements the TimerServiceHandler interface
var _ timerv1connect.TimerServiceHandler = (*RPCService)(nil)

// GetTime returns the remaining time
func (s *RPCService) GetTime(ctx context.Context, req *connect.Request[timerv1.GetTimeRequest]) (*connect.Response[timerv1.TimeResponse], error) {
	status, err := s.app.GetStatus(ctx)
	if err != nil {
		return nil, connectError("get time", err)
	}
	return connect.NewResponse(statusToProto(status)), nil
}

// Start starts or resumes the timer
func (s *RPCService) Start(ctx context.Context, req *connect.Request[timerv1.StartRequest]) (*connect.Response[timerv1.TimeResponse], error) {
	status, err := s.app.Start(ctx)
	if err != nil {
		return nil, connectError("start", err)
	}
	return connect.NewResponse(statusToProto(status)), nil
}

// Pause pauses the timer
func (s *RPCService) Pause(ctx context.Context, req *connect.Request[timerv1.PauseRequest]) (*connect.Response[timerv1.TimeResponse], error) {
	status, err := s.app.Pause(ctx)
	if err != nil {
		return nil, connectError("pause", err)
	}
	return connect.NewResponse(statusToProto(status)), nil
}

// Reset pauses the timer with the full duration left
func (s *RPCService) Reset(ctx context.Context, req *connect.Request[timerv1.ResetRequest]) (*connect.Response[timerv1.TimeResponse], error) {
	status, err := s.app.Reset(ctx)
	if err != nil {
		return nil, connectError("reset", err)
	}
	return connect.NewResponse(statusToProto(status)), nil
}

func statusToProto(status models.TimerStatus) *timerv1.TimeResponse {
	return &timerv1.TimeResponse{
		Remaining: int32(status.Remaining),
		Paused:    status.Paused,
		IsOver:    status.IsOver,
	}
}

func connectError(op string, err error) error {
	switch {
	case errors.Is(err, ErrTimerNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrStorageUnavailable):
		log.Error().Err(err).Str("op", op).Msg("timer storage unavailable")
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		log.Error().Err(err).Str("op", op).Msg("timer rpc failed")
		return connect.NewError(connect.CodeInternal, err)
	}
}
