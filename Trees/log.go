package Trees

import "github.com/sirupsen/logrus"

// Log receives the structural events of every tree in this package at Debug level, and the
// output of Print at Info level. Silence it with Log.SetLevel or Log.SetOutput.
var Log = logrus.New()
