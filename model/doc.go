/*
Package model provides hyper-parameters shared by matrix factorization models.

	* Params: hyper-parameters keyed by ParamName with typed getters and defaults.
	* sgd: stochastic gradient descent updates of user and movie latent factors.
*/
package model
