package io

import (
	"github.com/ezrec/vm16/translate"
)

var f = translate.From
