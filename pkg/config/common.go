package config

import (
	"fmt"
	"strings"
)

const (
	EtcDir     = "/etc/gretun"
	SystemdDir = "/etc/systemd/system"
)

func EtcFile(name ...string) string {
	return EtcDir + "/" + strings.Join(name, "/")
}

func UnitName(device string) string {
	return fmt.Sprintf("gretun-%s.service", device)
}
