package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shamaton/msgpack/v2"
	"github.com/tuannh982/go-collection/collection"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

type operation func(c *collection.Collection[any]) (any, error)

// OpCmd applies a single collection operation.
type OpCmd struct {
	opts  *Options
	apply operation
}

func (c *OpCmd) Execute(_ []string) error {
	return c.opts.execute(c.apply)
}

type FetchCmd struct {
	Key string `short:"k" long:"key" description:"Dot separated path, e.g. user.name" required:"yes"`

	opts *Options
}

func (c *FetchCmd) Execute(_ []string) error {
	return c.opts.execute(func(in *collection.Collection[any]) (any, error) {
		return in.Fetch(c.Key), nil
	})
}

func (o *Options) logger() *log.Entry {
	logger := log.New()
	logger.SetOutput(o.stderr)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(log.InfoLevel)
	if o.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.WithFields(log.Fields{"input": o.Input})
}

func (o *Options) execute(apply operation) error {
	logger := o.logger()
	data, err := o.read()
	if err != nil {
		return err
	}
	in, err := collection.FromJSON[any](data, collection.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	logger.Debug("loaded ", in.Count(), " entries")
	out, err := apply(in)
	if err != nil {
		return err
	}
	return o.write(out)
}

func (o *Options) read() ([]byte, error) {
	if o.Input == "" || o.Input == "-" {
		return io.ReadAll(o.stdin)
	}
	data, err := os.ReadFile(o.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func (o *Options) write(v any) error {
	data, err := o.encode(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = o.stdout.Write(data)
	return err
}

func (o *Options) encode(v any) ([]byte, error) {
	c, isCollection := v.(*collection.Collection[any])
	switch o.Format {
	case "yaml":
		if isCollection {
			s, err := c.ToYAML()
			return []byte(s), err
		}
		return yaml.Marshal(v)
	case "msgpack":
		if isCollection {
			return c.ToMsgpack()
		}
		return msgpack.Marshal(v)
	}
	if isCollection {
		s, err := c.ToJSON(collection.JSONOptions{Pretty: o.Pretty})
		return []byte(s + "\n"), err
	}
	var out []byte
	var err error
	if o.Pretty {
		out, err = json.MarshalIndent(v, "", "    ")
	} else {
		out, err = json.Marshal(v)
	}
	return append(out, '\n'), err
}
