package isvalid

import "github.com/pkg/errors"

func Check(b []byte, allowNil bool, vs ...IsValider) error {
	for i, v := range vs {
		if v == nil {
			if allowNil {
				continue
			}

			return InvalidError.Errorf("%dth: nil can not be checked", i)
		}

		if err := v.IsValid(b); err != nil {
			if errors.Is(err, InvalidError) {
				return err
			}

			return InvalidError.Wrap(err)
		}
	}

	return nil
}

func CheckFunc(fs []func() error) error {
	for i := range fs {
		if fs[i] == nil {
			return InvalidError.Errorf("%dth: nil func", i)
		}

		if err := fs[i](); err != nil {
			if errors.Is(err, InvalidError) {
				return err
			}

			return InvalidError.Wrap(err)
		}
	}

	return nil
}
