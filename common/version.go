package common

import "github.com/blang/semver/v4"

// Version current version of tradepost
var Version semver.Version

func init() {
	Version = semver.MustParse("0.3.0")
}
