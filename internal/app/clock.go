package app

import "time"

// now is the service clock; stores compare due dates in UTC.
var now = func() time.Time { return time.Now().UTC() }
