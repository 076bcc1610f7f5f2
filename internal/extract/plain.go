package extract

type plainExtractor struct{}

func (plainExtractor) Extract(contents []byte) (string, error) {
	return string(contents), nil
}
