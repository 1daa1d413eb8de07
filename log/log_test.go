package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/anitaku/filesystem"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()
	t.Setenv(where.EnvConfigPath, filepath.Join(os.TempDir(), "anitaku-log-test"))

	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup is a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Today's file is created", func() {
			Info("hello")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			exists, err := filesystem.API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
