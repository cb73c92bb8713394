package gorm_test

import (
	"testing"

	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestRepositoriesOnSQLite(t *testing.T) {
	suite.Run(t, &testutils.RepositorySuite{
		Open: func() *gorm.DB {
			return testutils.NewSQLiteDB(t)
		},
	})
}
