// Package fakerobot runs an in-memory robot gRPC server for tests. Handlers
// are pluggable per RPC; the defaults accept everything and report success.
package fakerobot

import (
	"context"
	"net"
	"sync"
	"testing"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	commandv1 "github.com/stridelabs/strider/api/command/v1"
	powerv1 "github.com/stridelabs/strider/api/power/v1"
	timesyncv1 "github.com/stridelabs/strider/api/timesync/v1"
)

// Server is a fake robot. Override the handler fields before Start to shape
// responses; request fields record what the client sent.
type Server struct {
	mu sync.Mutex

	CommandRequests  []*commandv1.RobotCommandRequest
	FeedbackRequests []*commandv1.RobotCommandFeedbackRequest
	PowerRequests    []*powerv1.PowerCommandRequest
	TimesyncRequests []*timesyncv1.TimeSyncUpdateRequest

	HandleCommand  func(*commandv1.RobotCommandRequest) (*commandv1.RobotCommandResponse, error)
	HandleFeedback func(*commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error)
	HandleClear    func(*commandv1.ClearBehaviorFaultRequest) (*commandv1.ClearBehaviorFaultResponse, error)
	HandlePower    func(*powerv1.PowerCommandRequest) (*powerv1.PowerCommandResponse, error)
	HandlePowerFB  func(*powerv1.PowerCommandFeedbackRequest) (*powerv1.PowerCommandFeedbackResponse, error)
	HandleTimesync func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error)
}

// New builds a fake robot with permissive defaults.
func New() *Server {
	return &Server{
		HandleCommand: func(*commandv1.RobotCommandRequest) (*commandv1.RobotCommandResponse, error) {
			return &commandv1.RobotCommandResponse{
				Status:         commandv1.RobotCommandStatusOK,
				RobotCommandID: 1,
			}, nil
		},
		HandleFeedback: func(*commandv1.RobotCommandFeedbackRequest) (*commandv1.RobotCommandFeedbackResponse, error) {
			return &commandv1.RobotCommandFeedbackResponse{
				Feedback: &commandv1.RobotCommandFeedback{},
			}, nil
		},
		HandleClear: func(*commandv1.ClearBehaviorFaultRequest) (*commandv1.ClearBehaviorFaultResponse, error) {
			return &commandv1.ClearBehaviorFaultResponse{
				Status: commandv1.ClearBehaviorFaultStatusCleared,
			}, nil
		},
		HandlePower: func(*powerv1.PowerCommandRequest) (*powerv1.PowerCommandResponse, error) {
			return &powerv1.PowerCommandResponse{
				Status:         powerv1.StatusSuccess,
				PowerCommandID: 1,
			}, nil
		},
		HandlePowerFB: func(*powerv1.PowerCommandFeedbackRequest) (*powerv1.PowerCommandFeedbackResponse, error) {
			return &powerv1.PowerCommandFeedbackResponse{Status: powerv1.StatusSuccess}, nil
		},
		HandleTimesync: func(*timesyncv1.TimeSyncUpdateRequest) (*timesyncv1.TimeSyncUpdateResponse, error) {
			return &timesyncv1.TimeSyncUpdateResponse{
				ClockIdentifier: "fake-clock",
				State: &timesyncv1.TimeSyncState{
					Status:       timesyncv1.StatusOK,
					BestEstimate: &timesyncv1.TimeSyncEstimate{},
				},
			}, nil
		},
	}
}

// Start serves the fake robot over an in-memory listener and returns a
// client connection to it. Everything shuts down with the test.
func (s *Server) Start(t *testing.T) *gogrpc.ClientConn {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := gogrpc.NewServer()
	server.RegisterService(&commandServiceDesc, s)
	server.RegisterService(&powerServiceDesc, s)
	server.RegisterService(&timesyncServiceDesc, s)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := gogrpc.NewClient("passthrough:///fakerobot",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial fake robot: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

type robotService interface{}

var commandServiceDesc = gogrpc.ServiceDesc{
	ServiceName: "strider.api.CommandService",
	HandlerType: (*robotService)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "RobotCommand", Handler: robotCommandHandler},
		{MethodName: "RobotCommandFeedback", Handler: robotCommandFeedbackHandler},
		{MethodName: "ClearBehaviorFault", Handler: clearBehaviorFaultHandler},
	},
}

var powerServiceDesc = gogrpc.ServiceDesc{
	ServiceName: "strider.api.PowerService",
	HandlerType: (*robotService)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "PowerCommand", Handler: powerCommandHandler},
		{MethodName: "PowerCommandFeedback", Handler: powerCommandFeedbackHandler},
	},
}

var timesyncServiceDesc = gogrpc.ServiceDesc{
	ServiceName: "strider.api.TimeSyncService",
	HandlerType: (*robotService)(nil),
	Methods: []gogrpc.MethodDesc{
		{MethodName: "TimeSyncUpdate", Handler: timeSyncUpdateHandler},
	},
}

func robotCommandHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(commandv1.RobotCommandRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	s := srv.(*Server)
	s.mu.Lock()
	s.CommandRequests = append(s.CommandRequests, req)
	s.mu.Unlock()
	return s.HandleCommand(req)
}

func robotCommandFeedbackHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(commandv1.RobotCommandFeedbackRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	s := srv.(*Server)
	s.mu.Lock()
	s.FeedbackRequests = append(s.FeedbackRequests, req)
	s.mu.Unlock()
	return s.HandleFeedback(req)
}

func clearBehaviorFaultHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(commandv1.ClearBehaviorFaultRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(*Server).HandleClear(req)
}

func powerCommandHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(powerv1.PowerCommandRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	s := srv.(*Server)
	s.mu.Lock()
	s.PowerRequests = append(s.PowerRequests, req)
	s.mu.Unlock()
	return s.HandlePower(req)
}

func powerCommandFeedbackHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(powerv1.PowerCommandFeedbackRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(*Server).HandlePowerFB(req)
}

func timeSyncUpdateHandler(srv any, ctx context.Context, dec func(any) error, _ gogrpc.UnaryServerInterceptor) (any, error) {
	req := new(timesyncv1.TimeSyncUpdateRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	s := srv.(*Server)
	s.mu.Lock()
	s.TimesyncRequests = append(s.TimesyncRequests, req)
	s.mu.Unlock()
	return s.HandleTimesync(req)
}
