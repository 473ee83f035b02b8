package fixtures

import (
	_ "embed"
)

//go:embed kernels/saxpy.cl
var SaxpyKernel string

//go:embed kernels/matmul.cl
var MatmulKernel string

//go:embed config/config.yaml.template
var ConfigTemplate []byte
