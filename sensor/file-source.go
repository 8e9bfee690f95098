package sensor

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "webtemp-sensor"

const DefaultPath = "temperature.txt"

type Path string

type SourceOption func(source *FileSource)

func WithParsePolicy(policy ParsePolicy) SourceOption {
	return func(source *FileSource) {
		source.policy = policy
	}
}

func NewFileSource(path Path, options ...SourceOption) *FileSource {
	source := &FileSource{path: string(path), policy: Lenient}
	for _, option := range options {
		option(source)
	}
	if source.path == "" {
		source.path = DefaultPath
	}

	return source
}

// FileSource reads the first line of a text file on every call. Nothing is cached
// between reads.
type FileSource struct {
	path   string
	policy ParsePolicy
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Read(ctx context.Context) (Reading, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "read temperature")
	defer span.End()
	span.SetAttributes(attribute.String("sensor.path", s.path))

	reading, err := s.read()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return Reading{}, err
	}

	span.SetAttributes(attribute.Int("sensor.value", reading.Value))
	return reading, nil
}

func (s *FileSource) read() (Reading, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return Reading{}, errors.Wrap(err, "failed to open sensor file")
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && err != io.EOF {
		return Reading{}, errors.Wrapf(err, "failed to read %s", s.path)
	}
	line = strings.TrimRight(line, "\r\n")

	value, err := s.policy.parse(line)
	if err != nil {
		return Reading{}, &ParseError{Path: s.path, Line: line, Err: err}
	}

	info, err := file.Stat()
	if err != nil {
		return Reading{}, errors.Wrapf(err, "failed to stat %s", s.path)
	}

	return Reading{
		Value:      value,
		Raw:        line,
		ObservedAt: info.ModTime(),
	}, nil
}
