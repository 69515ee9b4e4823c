//go:build unit

package commands_test

import (
	"testing"

	"bonus-crm/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type LanguageCommandsTestSuite struct {
	suite.Suite
	uow  *fakeUoW
	cmds commands.LanguageCommands
}

func (s *LanguageCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.cmds = commands.NewLanguageCommands(s.uow)
}

func TestLanguageCommandsSuite(t *testing.T) {
	suite.Run(t, new(LanguageCommandsTestSuite))
}

func (s *LanguageCommandsTestSuite) TestCreate() {
	ctx := s.T().Context()

	s.Run("stores the code lower-cased", func() {
		lang, err := s.cmds.Create(ctx, "SR", "Serbian")
		s.Require().NoError(err)
		s.Equal("sr", lang.Code)
		s.Equal("Serbian", s.uow.store.languages["sr"])
	})

	s.Run("duplicate code regardless of case", func() {
		_, err := s.cmds.Create(ctx, "hr", "Croatian")
		s.Require().NoError(err)

		_, err = s.cmds.Create(ctx, "HR", "Croatian")
		s.ErrorIs(err, commands.ErrLanguageCodeTaken)
	})
}

func (s *LanguageCommandsTestSuite) TestDelete() {
	ctx := s.T().Context()

	s.Run("deletes by lower-cased code", func() {
		_, err := s.cmds.Create(ctx, "sr", "Serbian")
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.Delete(ctx, "SR"))
		s.NotContains(s.uow.store.languages, "sr")
	})

	s.Run("unknown code", func() {
		s.ErrorIs(s.cmds.Delete(ctx, "xx"), commands.ErrLanguageNotFound)
	})
}
