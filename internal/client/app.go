package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/models"
	"github.com/gabriel-vasile/mimetype"
)

// Usage is printed when the command line cannot be parsed.
const Usage = `usage:
  faceid enroll -image <path>   register the face in the image
  faceid verify -image <path>   check the face against the registered one
  faceid status                 show whether the account is enrolled or terminated`

type App struct {
	api    FaceAPI
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api FaceAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Run executes one command. Enroll and verify return
// [ErrResultNotAccepted] after printing any result other than success.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUnknownCommand, Usage)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "enroll":
		return a.runFrameCommand(ctx, command, rest, a.api.Enroll)
	case "verify":
		return a.runFrameCommand(ctx, command, rest, a.api.Verify)
	case "status":
		status, err := a.api.Status(ctx)
		if err != nil {
			return err
		}
		return a.print(status)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) runFrameCommand(
	ctx context.Context,
	command string,
	args []string,
	call func(ctx context.Context, frame models.Frame) (models.VerificationResult, error),
) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	imagePath := fs.String("image", "", "path to the captured frame")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	if *imagePath == "" {
		return ErrMissingImage
	}

	frame, err := readFrame(*imagePath)
	if err != nil {
		return err
	}
	a.logger.Debug().Str("command", command).Str("content_type", frame.ContentType).Int("bytes", len(frame.Data)).Msg("sending frame")

	result, err := call(ctx, frame)
	if err != nil {
		return err
	}
	if err = a.print(result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrResultNotAccepted, result.Status)
	}
	return nil
}

func readFrame(path string) (models.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Frame{}, fmt.Errorf("read image: %w", err)
	}
	return models.Frame{Data: data, ContentType: mimetype.Detect(data).String()}, nil
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
