// Package striderctl parses striderctl flags and runs robot actions from
// the command line.
package striderctl

import (
	"context"
	"flag"
	"fmt"
	"time"

	"google.golang.org/grpc/credentials"

	leasev1 "github.com/stridelabs/strider/api/lease/v1"
	"github.com/stridelabs/strider/client/auth"
	"github.com/stridelabs/strider/client/command"
	"github.com/stridelabs/strider/client/power"
	"github.com/stridelabs/strider/client/timesync"
	"github.com/stridelabs/strider/internal/journal"
	"github.com/stridelabs/strider/internal/logging"
	entrypoint "github.com/stridelabs/strider/internal/platform/cmd"
	"github.com/stridelabs/strider/internal/platform/grpcconn"
	stridergrpc "github.com/stridelabs/strider/transport/grpc"
)

// Config holds striderctl configuration.
type Config struct {
	RobotAddr        string        `env:"STRIDER_ROBOT_ADDR" envDefault:"127.0.0.1:50051"`
	Token            string        `env:"STRIDER_TOKEN"`
	JournalPath      string        `env:"STRIDER_JOURNAL_PATH" envDefault:"data/strider.db"`
	LeaseResource    string        `env:"STRIDER_LEASE_RESOURCE" envDefault:"body"`
	DialTimeout      time.Duration `env:"STRIDER_DIAL_TIMEOUT" envDefault:"5s"`
	CommandTimeout   time.Duration `env:"STRIDER_COMMAND_TIMEOUT" envDefault:"30s"`
	TimesyncTimeout  time.Duration `env:"STRIDER_TIMESYNC_TIMEOUT" envDefault:"15s"`
	TimesyncInterval time.Duration `env:"STRIDER_TIMESYNC_INTERVAL" envDefault:"60s"`
	PollFrequency    float64       `env:"STRIDER_POLL_FREQUENCY" envDefault:"1"`
	LogLevel         string        `env:"STRIDER_LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"STRIDER_LOG_FORMAT" envDefault:"text"`

	// Action is the positional command: stand, sit, selfright, stop,
	// power-on, power-off, power-off-robot, power-cycle or journal.
	Action string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.RobotAddr, "robot-addr", cfg.RobotAddr, "The robot gRPC address")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "The robot session token")
	fs.StringVar(&cfg.JournalPath, "journal-path", cfg.JournalPath, "The command journal SQLite path")
	fs.StringVar(&cfg.LeaseResource, "lease-resource", cfg.LeaseResource, "The lease resource to claim")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "Robot dial timeout")
	fs.DurationVar(&cfg.CommandTimeout, "command-timeout", cfg.CommandTimeout, "Blocking command timeout")
	fs.DurationVar(&cfg.TimesyncTimeout, "timesync-timeout", cfg.TimesyncTimeout, "Time sync establishment timeout")
	fs.DurationVar(&cfg.TimesyncInterval, "timesync-interval", cfg.TimesyncInterval, "Time sync refresh interval")
	fs.Float64Var(&cfg.PollFrequency, "poll-frequency", cfg.PollFrequency, "Feedback polls per second")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Action = fs.Arg(0)
	if cfg.Action == "" {
		return Config{}, fmt.Errorf("an action is required: stand, sit, selfright, stop, power-on, power-off, power-off-robot, power-cycle, journal")
	}
	return cfg, nil
}

// Run executes the configured action against the robot.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStriderctl, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logf := logging.Logf(logger)

	store, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Action == "journal" {
		return printJournal(ctx, store)
	}

	var perRPC credentials.PerRPCCredentials
	if cfg.Token != "" {
		perRPC = auth.Credentials{Source: auth.NewTokenSource(cfg.Token)}
	}
	opts := grpcconn.RobotDialOptions(perRPC)
	conn, err := grpcconn.DialWithHealth(ctx, nil, cfg.RobotAddr, cfg.DialTimeout, logf, opts...)
	if err != nil {
		return err
	}
	defer conn.Close()

	transport := stridergrpc.NewClient(conn)
	endpoint := timesync.NewEndpoint(transport)
	keeper := timesync.NewKeeper(endpoint, cfg.TimesyncInterval, logf)
	keeper.Start(ctx)
	defer keeper.Stop()

	syncCtx, cancel := context.WithTimeout(ctx, cfg.TimesyncTimeout)
	err = keeper.WaitForSync(syncCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("establish time sync: %w", err)
	}
	logger.Info("time sync established", "clock_identifier", endpoint.ClockIdentifier())

	lease := &leasev1.Lease{Resource: cfg.LeaseResource}
	commands := command.NewClient(transport, endpoint)
	powerClient := power.NewClient(transport)

	blockOpts := command.BlockOptions{
		Timeout:   cfg.CommandTimeout,
		Frequency: cfg.PollFrequency,
		Lease:     lease,
	}
	seqOpts := power.SequenceOptions{
		Timeout:   cfg.CommandTimeout,
		Frequency: cfg.PollFrequency,
		Lease:     lease,
	}

	if err := store.Append(ctx, journal.Entry{Event: journal.EventSubmitted, Command: cfg.Action}); err != nil {
		return err
	}

	switch cfg.Action {
	case "stand":
		err = command.BlockingStand(ctx, commands, blockOpts)
	case "sit":
		err = command.BlockingSit(ctx, commands, blockOpts)
	case "selfright":
		err = command.BlockingSelfRight(ctx, commands, blockOpts)
	case "stop":
		_, err = commands.Submit(ctx, command.StopCommand(), command.WithLease(lease))
	case "power-on":
		err = power.OnMotors(ctx, powerClient, seqOpts)
	case "power-off":
		err = command.BlockingSafePowerOff(ctx, commands, blockOpts)
	case "power-off-robot":
		err = power.OffRobot(ctx, powerClient, seqOpts)
	case "power-cycle":
		err = power.CycleRobot(ctx, powerClient, seqOpts)
	default:
		err = fmt.Errorf("unknown action %q", cfg.Action)
	}

	event := journal.EventSucceeded
	detail := ""
	if err != nil {
		event = journal.EventFailed
		detail = err.Error()
	}
	if jerr := store.Append(ctx, journal.Entry{Event: event, Command: cfg.Action, Detail: detail}); jerr != nil {
		logger.Warn("journal append failed", "error", jerr)
	}
	if err != nil {
		return err
	}
	logger.Info("action complete", "action", cfg.Action)
	return nil
}

func printJournal(ctx context.Context, store *journal.Store) error {
	entries, err := store.Recent(ctx, 50)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s  %-9s  %-15s  %s\n",
			entry.CreatedAt.Format(time.RFC3339), entry.Event, entry.Command, entry.Detail)
	}
	return nil
}
