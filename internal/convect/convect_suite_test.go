package convect_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConvect(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Convect Suite")
}
