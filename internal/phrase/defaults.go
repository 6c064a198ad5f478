package phrase

// defaultPhrases is the built-in table. Technical terms map to themselves so
// that they are explicitly kept in English.
var defaultPhrases = []Phrase{
	{"Welcome", "欢迎"},
	{"Introduction", "简介"},
	{"Chapter", "章节"},
	{"Tutorial", "教程"},
	{"Exercise", "练习"},
	{"Solution", "解决方案"},
	{"Comparison", "对比"},
	{"Basics", "基础"},
	{"Overview", "概述"},
	{"Development", "开发"},
	{"Programming", "编程"},
	{"Computing", "计算"},
	{"Parallel", "并行"},
	{"Memory", "内存"},
	{"Kernel", "内核"},
	{"Algorithm", "算法"},
	{"Data", "数据"},
	{"Science", "科学"},
	{"Machine Learning", "机器学习"},
	{"GPU", "GPU"},
	{"CPU", "CPU"},
	{"CUDA", "CUDA"},
	{"Numba", "Numba"},
	{"CuPy", "CuPy"},
	{"cuDF", "cuDF"},
	{"cuML", "cuML"},
	{"Dask", "Dask"},
	{"Python", "Python"},
	{"C++", "C++"},
	{"NVIDIA", "NVIDIA"},
}
