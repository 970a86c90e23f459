package config

import "github.com/sirupsen/logrus"

// log is the package-level logger used by the registry loaders. Adapted
// from the teacher's package-level-logger convention (originally a bare
// stdlib *log.Logger with a SetLogger hook); rebuilt on logrus for
// consistency with the structured logrus.WithFields warnings pkg/stat
// already emits for unknown stat kinds, so load-time diagnostics and
// stat-application diagnostics share one format.
var log = logrus.WithField("package", "config")

// SetLogger replaces the package-level logger, letting a host application
// inject its own logrus.Entry (e.g. with request-scoped fields) instead of
// the package default.
func SetLogger(l *logrus.Entry) {
	log = l
}
