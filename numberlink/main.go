package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/fatih/structs"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nlink/numberlink"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	// Current Version
	version = "0.1.0"

	// kingpin app
	app = kingpin.New("numberlink", "A numberlink puzzle recoder and SAT-based solver.")
	// kingpin debug mode flag
	debug = app.Flag("debug", "Enable debug mode.").Short('v').Default("false").Bool()

	// kingpin compact command
	compact = app.Command("compact", "Recode integer rows from stdin into compact rows.")
	// kingpin expand command
	expand = app.Command("expand", "Recode compact rows from stdin back into integer rows.")

	// kingpin solve command
	solve = app.Command("solve", "Solve a compact puzzle read from stdin.")

	// kingpin server command
	server = app.Command("server", "Serve the recode and solve API over HTTP.")
	// kingpin web port
	webPort = server.Flag("webPort", "Port listening for web access.").Short('w').Default("3000").Int()
	// kingpin solve cache size
	cacheSize = server.Flag("cacheSize", "The number of solved puzzles kept in the cache.").Short('c').Default("128").Int()
)

// SolveResult is the solve API response payload.
type SolveResult struct {
	Solved bool
	Pairs  int
	Width  int
	Height int
	Rows   []string
}

// APIRecode wraps a row recoder as a text-in, text-out handler.
func APIRecode(recode func(io.Reader, io.Writer) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := recode(c.Request.Body, &buf); err != nil {
			c.String(http.StatusBadRequest, "%v\n", err)
			return
		}
		c.String(http.StatusOK, buf.String())
	}
}

// APISolve solves the posted puzzle, keeping results in the cache keyed
// by the raw puzzle text.
func APISolve(cache *lru.Cache[string, *SolveResult]) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "%v\n", err)
			return
		}

		if res, ok := cache.Get(string(body)); ok {
			log.Debugf("solve cache hit (%v entries)", cache.Len())
			c.JSON(http.StatusOK, structs.Map(res))
			return
		}

		grid, err := numberlink.ParseGrid(bytes.NewReader(body))
		if err != nil {
			c.String(http.StatusBadRequest, "%v\n", err)
			return
		}

		res := &SolveResult{
			Pairs:  grid.Pairs(),
			Width:  grid.Width,
			Height: grid.Height,
		}
		if sol, err := numberlink.NewInstance(grid).Solve(); err == nil {
			res.Solved = true
			res.Rows = sol.Rows
		}
		cache.Add(string(body), res)
		c.JSON(http.StatusOK, structs.Map(res))
	}
}

// newRouter wires the api/v1 group.
func newRouter(cache *lru.Cache[string, *SolveResult]) *gin.Engine {
	r := gin.Default()
	v1 := r.Group("api/v1")
	v1.POST("/compact", APIRecode(numberlink.Compact))
	v1.POST("/expand", APIRecode(numberlink.Expand))
	v1.POST("/solve", APISolve(cache))
	return r
}

// recode mode
func runRecode(recode func(io.Reader, io.Writer) error) int {
	if err := recode(os.Stdin, os.Stdout); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

// solve mode
func runSolve() int {
	grid, err := numberlink.ParseGrid(os.Stdin)
	if err != nil {
		log.Error(err)
		return 1
	}

	ins := numberlink.NewInstance(grid)
	log.Debugf("%v pairs on %vx%v cells: %v variables, %v clauses",
		grid.Pairs(), grid.Width, grid.Height, ins.NumVars(), ins.NumClauses())

	sol, err := ins.Solve()
	if err != nil {
		fmt.Println("No unique spanning solution.")
		return 1
	}
	fmt.Print(sol)
	return 0
}

// server mode
func runServer() int {
	cache, err := lru.New[string, *SolveResult](*cacheSize)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("listening on :%v", *webPort)
	if err := newRouter(cache).Run(":" + strconv.Itoa(*webPort)); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func main() {
	app.Version(version)
	parse := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	switch parse {
	case compact.FullCommand():
		os.Exit(runRecode(numberlink.Compact))
	case expand.FullCommand():
		os.Exit(runRecode(numberlink.Expand))
	case solve.FullCommand():
		os.Exit(runSolve())
	case server.FullCommand():
		os.Exit(runServer())
	}
}
