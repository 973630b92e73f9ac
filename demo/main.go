package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"glscene/assets"
	"glscene/common/logger"
	"glscene/config"
	"glscene/scene"
)

// viewer is everything a platform loop needs besides the GL context.
type viewer struct {
	cfg       *config.Config
	log       *logger.Logger
	catalog   *assets.Catalog
	stateFile string
	// changed is signalled by the asset watcher; the render thread
	// reloads textures when it sees it.
	changed chan struct{}
}

func newViewer(cfgPath, stateFile string) (*viewer, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if stateFile == "" {
		stateFile = cfg.State.File
	}
	v := &viewer{cfg: cfg, log: log, stateFile: stateFile, changed: make(chan struct{}, 1)}
	if cfg.Assets.Dir != "" {
		v.catalog, err = assets.NewCatalog(cfg.Assets.Dir, log.SugaredLogger)
		if err != nil {
			log.Warnw("no texture catalog", "dir", cfg.Assets.Dir, "err", err)
			v.catalog = nil
		}
	}
	if v.catalog != nil && cfg.Assets.Watch {
		err = v.catalog.Watch(func() {
			select {
			case v.changed <- struct{}{}:
			default:
			}
		})
		if err != nil {
			log.Warnw("texture watch disabled", "err", err)
		}
	}
	return v, nil
}

// restore loads the saved state into e, if there is one.
func (v *viewer) restore(e *scene.Engine) {
	if v.stateFile == "" {
		return
	}
	err := e.State.Load(v.stateFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		v.log.Warnw("state not restored", "file", v.stateFile, "err", err)
	default:
		v.log.Infow("state restored", "file", v.stateFile)
	}
}

// reloadTextures marks every shape texture changed after the catalog
// changed on disk.
func (v *viewer) reloadTextures(e *scene.Engine) {
	select {
	case <-v.changed:
		for j := range e.State.Shapes {
			e.State.Shapes[j].TextureChanged = true
		}
	default:
	}
}

// save writes the state of e to the state file, if one is configured.
func (v *viewer) save(e *scene.Engine) {
	if e == nil || v.stateFile == "" {
		return
	}
	if err := e.State.Save(v.stateFile); err != nil {
		v.log.Errorw("state not saved", "file", v.stateFile, "err", err)
	}
}

// suspend saves the state of e before its GL context goes away and returns
// it for the next resume.
func (v *viewer) suspend(e *scene.Engine) *scene.State {
	v.save(e)
	st := e.State
	e.DeleteGraphicObjects()
	return &st
}

// resume gives a fresh engine the state it had when suspended, or the saved
// state on the first start.
func (v *viewer) resume(e *scene.Engine, prev *scene.State) {
	if prev != nil {
		e.State = *prev
		return
	}
	v.restore(e)
}

func (v *viewer) close(e *scene.Engine) {
	v.save(e)
	if v.catalog != nil {
		_ = v.catalog.Close()
	}
	_ = v.log.Close()
}

func newRootCmd() *cobra.Command {
	var cfgPath, stateFile string
	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Render the sphere scene",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViewer(cfgPath, stateFile)
			if err != nil {
				return err
			}
			return run(v)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "glscene.yaml", "YAML config file")
	cmd.Flags().StringVar(&stateFile, "state", "", "scene snapshot file, overrides state.file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
