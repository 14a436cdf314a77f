package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/jwtcrack/pkg/config"
	"github.com/dmitrymomot/jwtcrack/pkg/dispatcher"
	"github.com/dmitrymomot/jwtcrack/pkg/forge"
	"github.com/dmitrymomot/jwtcrack/pkg/jwt"
	"github.com/dmitrymomot/jwtcrack/pkg/logger"
	"github.com/dmitrymomot/jwtcrack/pkg/potfile"
	"github.com/dmitrymomot/jwtcrack/pkg/progress"
	"github.com/dmitrymomot/jwtcrack/pkg/wordlist"
)

const (
	exitFound       = 0
	exitInvalid     = 1
	exitExhausted   = 2
	exitInterrupted = 130
)

var errMissingToken = errors.New("token file is required (-t)")

// Config holds defaults that command line flags may override.
type Config struct {
	Workers   int    `env:"JWTCRACK_WORKERS" envDefault:"10"`
	LogLevel  string `env:"JWTCRACK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"JWTCRACK_LOG_FORMAT" envDefault:"text"`
	Potfile   string `env:"JWTCRACK_POTFILE"`
	Progress  bool   `env:"JWTCRACK_PROGRESS" envDefault:"false"`

	Redis potfile.RedisConfig
	S3    wordlist.S3Config
}

type options struct {
	workers   int
	tokenFile string
	dictFile  string
	s3URL     string
	potfile   string
	progress  bool
	forge     string
	logLevel  string
	logFormat string
}

func parseFlags(cfg Config, args []string, stderr io.Writer) (options, error) {
	opts := options{}

	fs := flag.NewFlagSet("jwtcrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.workers, "c", cfg.Workers, "number of concurrent workers")
	fs.StringVar(&opts.tokenFile, "t", "", "file containing the token on its first line")
	fs.StringVar(&opts.dictFile, "d", "", "dictionary file, one candidate per line (default: stdin)")
	fs.StringVar(&opts.s3URL, "s3", "", "dictionary stored in S3, as s3://bucket/key")
	fs.StringVar(&opts.potfile, "potfile", cfg.Potfile, "file recording recovered secrets")
	fs.BoolVar(&opts.progress, "progress", cfg.Progress, "draw a progress bar on stderr")
	fs.StringVar(&opts.forge, "forge", "", "JSON claims to merge into the token and re-sign after recovery")
	fs.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.tokenFile == "" {
		return opts, errMissingToken
	}
	if opts.dictFile != "" && opts.s3URL != "" {
		return opts, errors.New("-d and -s3 are mutually exclusive")
	}
	return opts, nil
}

func newLogger(opts options, stderr io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(strings.ToLower(opts.logFormat))
	if format != logger.FormatText && format != logger.FormatJSON {
		return nil, fmt.Errorf("invalid log format %q", opts.logFormat)
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component("jwtcrack")),
	), nil
}

// readToken returns the first line of the file at path without surrounding whitespace.
func readToken(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func openStore(ctx context.Context, cfg Config, opts options) (potfile.Store, func(), error) {
	if cfg.Redis.ConnectionURL != "" {
		client, err := potfile.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return potfile.NewRedisStore(client, potfile.WithKey(cfg.Redis.Key)), func() { _ = client.Close() }, nil
	}
	if opts.potfile != "" {
		return potfile.NewFileStore(opts.potfile), func() {}, nil
	}
	return nil, func() {}, nil
}

func dictionarySource(ctx context.Context, cfg Config, opts options, stdin io.Reader) (wordlist.Source, error) {
	switch {
	case opts.s3URL != "":
		client, err := wordlist.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return wordlist.NewS3Source(client, opts.s3URL)
	case opts.dictFile != "":
		return wordlist.FileSource(opts.dictFile), nil
	default:
		return wordlist.ReaderSource{Name: "stdin", Reader: stdin}, nil
	}
}

// report prints the result line and, when requested, a forged token.
func report(stdout io.Writer, token *jwt.Token, secret string, claims map[string]any) error {
	fmt.Fprintf(stdout, "%s    %s\n", secret, token.SigningInput())

	if claims == nil {
		return nil
	}
	forged, err := forge.Resign(token.String(), secret, claims)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, forged)
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "jwtcrack: %v\n", err)
		return exitInvalid
	}

	opts, err := parseFlags(cfg, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		fmt.Fprintf(stderr, "jwtcrack: %v\n", err)
		return exitInvalid
	}

	log, err := newLogger(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "jwtcrack: %v\n", err)
		return exitInvalid
	}

	var claims map[string]any
	if opts.forge != "" {
		if claims, err = forge.ParseClaims(opts.forge); err != nil {
			log.Error("invalid -forge claims", logger.Error(err))
			return exitInvalid
		}
	}

	raw, err := readToken(opts.tokenFile)
	if err != nil {
		log.Error("cannot read token", logger.Source(opts.tokenFile), logger.Error(err))
		return exitInvalid
	}
	token, err := jwt.Parse(raw)
	if err != nil {
		log.Error("invalid token", logger.Source(opts.tokenFile), logger.Error(err))
		return exitInvalid
	}

	var bar *progress.Bar
	d, err := dispatcher.New(
		dispatcher.WithWorkers(opts.workers),
		dispatcher.WithLogger(log),
		dispatcher.WithOnAttempt(func() {
			if bar != nil {
				bar.Increment()
			}
		}),
	)
	if err != nil {
		log.Error("invalid configuration", logger.Workers(opts.workers), logger.Error(err))
		return exitInvalid
	}

	store, closeStore, err := openStore(ctx, cfg, opts)
	if err != nil {
		log.Error("cannot open potfile", logger.Error(err))
		return exitInvalid
	}
	defer closeStore()

	if store != nil {
		secret, ok, err := store.Lookup(ctx, token.String())
		if err != nil {
			log.Warn("potfile lookup failed", logger.Error(err))
		} else if ok {
			log.Info("secret already in potfile")
			if err := report(stdout, token, secret, claims); err != nil {
				log.Error("forge failed", logger.Error(err))
				return exitInvalid
			}
			return exitFound
		}
	}

	src, err := dictionarySource(ctx, cfg, opts, stdin)
	if err != nil {
		log.Error("invalid dictionary source", logger.Error(err))
		return exitInvalid
	}
	lines, err := wordlist.Load(ctx, src)
	if err != nil {
		log.Error("cannot read dictionary", logger.Source(src.String()), logger.Error(err))
		return exitInvalid
	}
	log.Debug("dictionary loaded", logger.Source(src.String()), logger.Candidates(len(lines)))

	if opts.progress {
		bar = progress.New(len(lines), progress.WithOutput(stderr)).Start()
	}

	res, err := d.Run(ctx, token, wordlist.Seq(lines))
	if bar != nil {
		bar.Finish()
	}

	switch {
	case errors.Is(err, dispatcher.ErrCanceled):
		log.Warn("interrupted", logger.Attempts(res.Attempts))
		return exitInterrupted
	case err != nil:
		log.Error("run failed", logger.Error(err))
		return exitInvalid
	case !res.Found:
		log.Info("no secret found", logger.Attempts(res.Attempts), logger.Candidates(len(lines)))
		return exitExhausted
	}

	if store != nil {
		if err := store.Record(context.WithoutCancel(ctx), token.String(), res.Secret); err != nil {
			log.Warn("cannot record secret", logger.Error(err))
		}
	}

	if err := report(stdout, token, res.Secret, claims); err != nil {
		log.Error("forge failed", logger.Error(err))
		return exitInvalid
	}
	return exitFound
}
