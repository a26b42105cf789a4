package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	flags "github.com/jessevdk/go-flags"
	"github.com/jrsteele09/go-auth-cli/login"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

type options struct {
	ClientID    string `long:"client-id" description:"OAuth client identifier"`
	Scope       string `long:"scope" description:"Requested scopes"`
	RedirectURI string `long:"redirect-uri" description:"Redirect URI registered with the provider"`
	Env         string `long:"env" description:"Deployment environment (STAGE or PROD)"`
	Timeout     int    `long:"timeout" description:"Seconds to wait for the browser callback"`
	Logout      bool   `long:"logout" description:"Force a logout before signing in"`
	Debug       bool   `long:"debug" description:"Enable debug logging"`
}

func main() {
	if err := run(); err != nil {
		zlog.Fatal().Err(err).Msg("login failed")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	configureLogging(opts.Debug)
	displayAppName("auth cli")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cred, err := login.Run(ctx, login.Options{
		ClientID:    opts.ClientID,
		Scope:       opts.Scope,
		RedirectURI: opts.RedirectURI,
		Environment: opts.Env,
		ForceLogout: opts.Logout,
		Timeout:     time.Duration(opts.Timeout) * time.Second,
	})
	if err != nil {
		return err
	}

	fmt.Println(cred.Secret())
	return nil
}

func configureLogging(debugEnabled bool) {
	level := zerolog.InfoLevel
	if debugEnabled {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppName(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
