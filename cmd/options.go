package cmd

import (
	"io"

	"github.com/tuannh982/go-collection/collection"
)

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Input   string `short:"i" long:"input" description:"JSON input file, - for stdin" default:"-"`
	Format  string `short:"o" long:"format" description:"Output format" choice:"json" choice:"yaml" choice:"msgpack" default:"json"`
	Pretty  bool   `short:"p" long:"pretty" description:"Indent JSON output"`
	Verbose bool   `short:"v" long:"verbose" description:"Log debug messages"`

	Count   OpCmd    `command:"count" description:"Print the number of entries"`
	Keys    OpCmd    `command:"keys" description:"Print the keys in order"`
	First   OpCmd    `command:"first" description:"Print the first value"`
	Last    OpCmd    `command:"last" description:"Print the last value"`
	Values  OpCmd    `command:"values" description:"Drop the keys and renumber from 0"`
	Flatten OpCmd    `command:"flatten" description:"Flatten nested arrays and objects"`
	Merge   OpCmd    `command:"merge" description:"Merge every element into one object"`
	Fetch   FetchCmd `command:"fetch" description:"Pluck a dot separated path from every element"`

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewOptions(stdin io.Reader, stdout, stderr io.Writer) *Options {
	o := &Options{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	o.Count = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		return c.Count(), nil
	}}
	o.Keys = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		return collection.Map(c, func(_ any, k collection.Key) string {
			return k.String()
		}), nil
	}}
	o.First = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		v, _ := c.First()
		return v, nil
	}}
	o.Last = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		v, _ := c.Last()
		return v, nil
	}}
	o.Values = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		return c.Values(), nil
	}}
	o.Flatten = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		return collection.Of(c.Flatten()...), nil
	}}
	o.Merge = OpCmd{opts: o, apply: func(c *collection.Collection[any]) (any, error) {
		return c.Merge()
	}}
	o.Fetch = FetchCmd{opts: o}
	return o
}
