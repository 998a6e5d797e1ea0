package api

import (
	"github.com/slugline/slugline-go/lib"
	"github.com/slugline/slugline-go/lib/api/script"
)

func InitAPI(initStore *lib.InitStore) {
	script.Init(initStore)
}
