package datafile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a named *File to the graph.
// The name is used as both the module name and the DI named tag for *File.
// The document at path is loaded on start and saved on stop; the stop-time
// save is dirty-gated, so an untouched document never causes a write. A
// missing file is tolerated on start: the module begins with an empty
// document bound to path, which the stop-time save creates if anything was
// changed.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyModuleName)
	}

	if path == "" {
		return fx.Error(ErrNoFileName)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func(lifecycle fx.Lifecycle) *File {
				file := New(opts...)

				lifecycle.Append(fx.Hook{
					OnStart: func(context.Context) error {
						return loadOrStartEmpty(file, name, path)
					},
					OnStop: func(context.Context) error {
						saveErr := file.Save()
						if saveErr != nil {
							slog.Error("failed to save datafile", "name", name, "error", saveErr)

							return saveErr
						}

						return nil
					},
				})

				return file
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}

func loadOrStartEmpty(file *File, name, path string) error {
	err := file.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("datafile does not exist yet, starting empty", "name", name, "path", path)
		file.SetFileName(path)

		return nil
	}

	return err
}
