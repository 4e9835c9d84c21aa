// Package main provides the entry point for SS14 Displacer Studio.
package main

import (
	"log"
	"os"
	"time"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/reload"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/version"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/mainwindow"
	"github.com/slycoolgamer/SS14-Displacer-Studio/ui/prefs"

	"fyne.io/fyne/v2/app"
)

const appTitle = "SS14 Displacer Studio"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := app.NewWithID("com.slycoolgamer.ss14-displacer")
	fyneApp.Settings().SetTheme(&mainwindow.StudioTheme{})

	sess := session.New()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, sess, appPrefs)

	setupHotReload(appPrefs)

	// A displacement map given on the command line is opened directly
	if len(os.Args) > 1 {
		path := os.Args[1]
		r, err := raster.LoadFile(path)
		if err != nil {
			log.Printf("Failed to load %s: %v", path, err)
		} else {
			sess.LoadDisplacement(r)
		}
	}

	win.ShowAndRun()
}

// setupHotReload restarts into a freshly compiled binary during development.
func setupHotReload(appPrefs *prefs.Prefs) {
	watcher := reload.NewWatcher(2 * time.Second)
	if watcher == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s", watcher.ExecPath())
	watcher.OnUpdate(func() {
		log.Println("Hot reload: newer binary found, restarting")
		_ = appPrefs.Save()
		if err := watcher.Restart(); err != nil {
			log.Printf("Hot reload: restart failed: %v", err)
		}
	})
	watcher.Start()
}
