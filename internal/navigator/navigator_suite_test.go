package navigator_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNavigator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Navigator Suite")
}
