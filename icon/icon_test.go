package icon

import (
	"testing"

	"github.com/anipeek/anipeek/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Fail), ShouldBeEmpty)
		})

		Convey("It returns empty for an unregistered icon", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(999)), ShouldBeEmpty)
		})
	})
}
