package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/cuihairu/playshelf/services/library/app"
)

var configFile = flag.String("f", "etc/library.yaml", "the config file")

func main() {
	flag.Parse()
	logx.Must(app.Run(app.Options{ConfigFile: *configFile}))
}
