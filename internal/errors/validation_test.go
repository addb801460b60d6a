package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("spellcaster").
		Fieldf("slots[4]", "needs a %s", "titan").
		Field("slots", "duplicate card")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "spellcaster: is required")
	s.Assert().Contains(err.Error(), "slots[4]: needs a titan")

	fields := errors.ValidationFields(err)
	s.Require().Len(fields, 3)
	s.Assert().Equal([]string{"duplicate card"}, fields["slots"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestMessageIsStable() {
	first := errors.NewValidationBuilder().Field("b", "x").Field("a", "y").Build()
	second := errors.NewValidationBuilder().Field("a", "y").Field("b", "x").Build()
	s.Assert().Equal(first.Error(), second.Error())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "deck", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("token", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateOneOf() {
	vb := errors.NewValidationBuilder()
	errors.ValidateOneOf("type", "deck", []string{"deck", "team"}, vb)
	s.Assert().NoError(vb.Build())

	errors.ValidateOneOf("type", "hand", []string{"deck", "team"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: deck, team")
}
